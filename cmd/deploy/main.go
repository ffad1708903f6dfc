package main

import (
	"fmt"
	"os"

	"github.com/flashstake/flashstake-deploy/cli/command"
	"github.com/joho/godotenv"
	"github.com/mgutz/ansi"
	"github.com/urfave/cli"
)

const contractName = "FlashStakeProtocol"

var version string

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, ansi.Color(fmt.Sprintf("failed to load .env: %s", err), "red"))
		os.Exit(1)
	}

	cli.AppHelpTemplate = helpTextTemplate

	deployCommand := command.NewDeployCommand(contractName)

	app := cli.NewApp()

	app.Version = version

	app.Name = "FlashStake contract deployment"
	app.HelpName = "deploy"
	app.Usage = fmt.Sprintf("Deploy the %s contract and wait for it to be mined", contractName)

	app.Flags = deployCommand.Flags()
	app.Action = deployCommand.Action

	app.Commands = []cli.Command{
		command.NewVersionCommand().Cli(),
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
