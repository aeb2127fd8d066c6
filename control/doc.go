// Package control
// Author: momentics <momentics@gmail.com>
//
// Operational surface of hioload-pdu: configuration loading with reload
// hooks, logging setup, and Prometheus export of pool statistics.
package control
