package command

import "github.com/urfave/cli"

type VersionCommand struct{}

func NewVersionCommand() VersionCommand {
	return VersionCommand{}
}

func (VersionCommand) Cli() cli.Command {
	return cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(c *cli.Context) error {
			cli.ShowVersion(c)
			return nil
		},
	}
}
