// Package handle tracks live engine instances behind small integer
// handles.
//
// Foreign callers cannot hold Go pointers, so every instance the
// boundary creates is parked in a Table and addressed by its Handle.
// Handle 0 is reserved and always invalid. Handles are allocated
// monotonically and never reused, so a stale handle after dispose can
// only miss; it can never alias a newer instance.
package handle
