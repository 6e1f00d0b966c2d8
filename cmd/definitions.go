package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/fugue/runtask/format"
	"github.com/fugue/runtask/task"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDefinitionsCommand returns a command that lists task definitions
func NewDefinitionsCommand() *cobra.Command {

	defaultCols := []string{
		"Name",
		"Revision",
		"ARN",
	}

	cmd := &cobra.Command{
		Use:     "definitions",
		Short:   "List active task definitions",
		Aliases: []string{"defs"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {

			opts := getRuntaskOptions()
			api := ecs.New(mustSession(opts.Region))

			defs, err := task.ListDefinitions(context.Background(), api,
				viper.GetString("family-prefix"))
			if err != nil {
				fatal(err)
			}
			if len(defs) == 0 {
				return
			}

			var rows []interface{}
			for _, def := range defs {
				rows = append(rows, def)
			}
			table, err := format.Table(format.TableOpts{
				Rows:       rows,
				Columns:    defaultCols,
				ShowHeader: true,
			})
			if err != nil {
				fatal(err)
			}
			for _, tableRow := range table {
				fmt.Println(tableRow)
			}
		},
	}

	cmd.Flags().String("family-prefix", "", "Only list families with this prefix")
	viper.BindPFlag("family-prefix", cmd.Flags().Lookup("family-prefix"))

	return cmd
}

func init() {
	rootCmd.AddCommand(NewDefinitionsCommand())
}
