package command

const deploySigintQuestion = "Stopping now will not cancel a deployment transaction that was already submitted. Are you sure you want to cancel? [yes/no]"
const deployStdinErrorMessage = "Couldn't read from Stdin, if you still want to stop the deployment send SIGTERM."
const deployCancelledNotice = "Deployment cancelled. A submitted transaction may still be mined, check the deployer account on a block explorer before deploying again."
