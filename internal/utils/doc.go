// Package utils provides small helpers shared by the transport layer:
// JSON response writing and trace id generation.
package utils
