package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the stored session",
	Long:  "The session command shows who is signed in and when the token expires. The expiry is informational, the server decides whether a token is still accepted",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(cmd, showSession) },
}

func showSession(sessionContext *session.Context, inspector *session.Inspector) error {
	current, err := sessionContext.Session()
	if err != nil {
		fmt.Println("Not signed in")
		return nil
	}

	if current.User != nil {
		fmt.Printf("Username: %s\n", current.User.Username)
		fmt.Printf("Role: %s\n", current.User.Role)
	}

	claims, err := inspector.Inspect(current.Token)
	if err != nil {
		fmt.Println("Token: opaque")
		return nil
	}
	if expiry := claims.Expiry(); expiry != nil {
		state := "valid"
		if claims.ExpiredAt(time.Now()) {
			state = "expired"
		}
		fmt.Printf("Token expires: %s (%s)\n", expiry.Format(time.RFC3339), state)
	} else {
		fmt.Println("Token expires: never")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
