package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const completionHelp = `Print a shell completion script for runtask.

Load completions in the current shell:

  bash:        $ source <(runtask completion bash)
  zsh:         $ source <(runtask completion zsh)
  fish:        $ runtask completion fish | source
  powershell:  PS> runtask completion powershell | Out-String | Invoke-Expression

Install them for every new bash session:

  $ runtask completion bash > /etc/bash_completion.d/runtask
`

// NewCompletionCommand returns a command that prints shell completion scripts
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate completion script",
		Long:                  completionHelp,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletion(out)
			}
			return fmt.Errorf("Unsupported shell: %s", args[0])
		},
	}
}

func init() {
	rootCmd.AddCommand(NewCompletionCommand())
}
