// Package api handles incoming HTTP requests for the person directory:
// parameter binding, request validation and response formatting. Every
// handler collects all violations from every parameter source before it
// answers with a 422.
package api
