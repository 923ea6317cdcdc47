// Package clock abstracts the wall clock.
//
// The mail transports stamp the Date header from a Clocker so tests can pin
// it with Fixed.
package clock
