// Package tables contains limits for JPEG entropy coding tables.
//
// This includes the maximum code length a DHT segment can describe
// and the number of values each table class may carry.
package tables
