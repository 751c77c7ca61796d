package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// getStatus renders the prompt decoration: the logged-in user's first
// name, or nothing when logged out.
func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	name := a.user.Name
	if fields := strings.Fields(name); len(fields) > 0 {
		name = fields[0]
	}
	return fmt.Sprintf("(%s)", name)
}

// Root restores the persisted session, greets the user, and runs the REPL
// on stdin until exit.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Birthday Keeper CLI (type 'help' for commands)")

	if u, err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	} else if u != nil {
		a.user = u
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
