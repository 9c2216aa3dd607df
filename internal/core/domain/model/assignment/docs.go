// Package assignment contains the Assignment aggregate: the accepted binding
// of one carrier to one freight slot, with its delivery state machine, the
// two-party payment handshake, and the paid-withdrawal exit.
package assignment
