// Package feeconfig implements a weighted fee distribution configuration.
//
// A FeeConfig pairs recipient addresses with positive integer weights. Checking
// the config resolves every address through an AddressResolver and yields a
// CheckedFeeConfig, which can split a total amount into exact per-recipient
// shares and build the bank send messages paying them out.
//
// The split is exact: shares always sum to the input total. Flooring losses are
// handed back one unit at a time to the recipients with the largest fractional
// remainder, ties going to the earlier recipient, so results are deterministic.
//
// A CheckedFeeConfig is immutable after construction and safe to share between
// concurrent readers. Message building is pure; embedding the returned messages
// in a transaction and broadcasting it is the caller's job.
package feeconfig
