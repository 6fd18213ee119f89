// Package clientfactory constructs the cloud SDK clients used by
// commands.
//
// The factories are pure glue: they resolve shared AWS configuration
// from the environment and hand back service clients. No request
// behavior lives here.
package clientfactory
