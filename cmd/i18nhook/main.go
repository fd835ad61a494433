// i18nhook adds the react-i18next translation hook to the Biosi screen sources.
package main

import (
	"os"

	"github.com/teo/biosi-i18n/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
