// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Lock-free primitives backing the pool free lists. Nothing here blocks;
// full and empty conditions are reported to the caller.
package concurrency
