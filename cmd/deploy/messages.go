package main

const helpTextTemplate = `NAME:
   {{.Name}}{{if .Usage}} - {{.Usage}}{{end}}

USAGE:
   deploy [options]
   deploy version{{if .Version}}{{if not .HideVersion}}

VERSION:
   {{.Version}}{{end}}{{end}}{{if .Description}}

DESCRIPTION:
   {{.Description}}{{end}}{{if .VisibleFlags}}

OPTIONS:
   {{range $index, $option := .VisibleFlags}}{{if $index}}
   {{end}}{{$option}}{{end}}{{end}}

ENVIRONMENT:
   Variables may also be set in a .env file in the working directory.
   DEPLOYER_PRIVATE_KEY, DEPLOY_RPC_URL, DEPLOY_CHAIN_ID, DEPLOY_ARTIFACTS, PUSHGATEWAY_URL
`
