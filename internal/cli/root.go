package cli

import (
	"bufio"
	"context"
	"os"
)

// Root runs the interactive loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.account != nil {
		return a.account.Username
	}
	return "not logged in"
}
