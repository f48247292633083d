// Package pauli implements exact symbolic algebra over Pauli operators:
// terms (tensor products of single-qubit X/Y/Z operators with a complex
// or symbolic coefficient), formal sums of terms, simplification,
// commutation analysis, and a compact textual interchange form.
//
// Every algebra operation returns new values; operands are never
// mutated. Independent values are therefore safe to use from
// independent goroutines without synchronization.
//
// Term equality uses an absolute+relative tolerance on coefficients,
// while hashing rounds coefficients at a fixed precision
// (HashPrecision). The two agree except right at rounding boundaries;
// see HashPrecision for the contract.
package pauli
