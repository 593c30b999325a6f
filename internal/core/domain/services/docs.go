// Package services contains stateless domain services that operate across
// aggregates: JobMatcher ranks unassigned jobs by great-circle distance from
// a mechanic's position, OtpGenerator produces the one-time presence codes
// used by the job handshake, and JobPricer is the single derivation point
// for a job's service name and base amount.
package services
