package display

import (
	"fmt"
	"os"

	"github.com/backmassage/mediasweep/internal/term"
)

// PrintBanner prints the ASCII art banner, accent-colored when enabled.
func PrintBanner() {
	art := ` __  __          _ _       ____
|  \/  | ___  __| (_) __ _/ ___|_      _____  ___ _ __
| |\/| |/ _ \/ _` + "`" + ` | |/ _` + "`" + ` \___ \ \ /\ / / _ \/ _ \ '_ \
| |  | |  __/ (_| | | (_| |___) \ V  V /  __/  __/ |_) |
|_|  |_|\___|\__,_|_|\__,_|____/ \_/\_/ \___|\___| .__/
                                                 |_|`
	fmt.Fprintln(os.Stdout, term.Accent.Render(art))
	fmt.Fprintln(os.Stdout)
}
