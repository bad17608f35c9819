// Package state holds the view state of mounted home page instances.
//
// Each full page load mounts a new instance whose like counter starts at zero.
// The only mutation is Like, which replaces the counter with its current value
// plus one under the store lock, so concurrent activations for the same
// instance are applied one at a time and none are lost. Instances that have
// not been touched for the configured TTL are evicted by Sweep.
//
// Like publishes a LikeRecorded event after releasing the lock. Events for
// concurrent likes on one instance may therefore arrive out of Likes order;
// subscribers that need the latest value should keep the maximum they have
// seen rather than the last.
package state
