// Package commands implements the mlctl command tree: a thin command-line
// front end over the Mojaloop ledger and settlement client.
package commands
