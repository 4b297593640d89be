// Package cipherjob defines the job descriptor contract exchanged between callers and the
// multi-buffer job manager, together with the status model, the key schedule and kernel
// contracts, and the sentinel errors shared by every layer.
package cipherjob
