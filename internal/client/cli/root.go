package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if st := a.session.State(); st.IsLoggedIn() {
		s = fmt.Sprintf("(%s)", st.Username())
	}
	return s
}

// Root runs the interactive loop over stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to menumap CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
