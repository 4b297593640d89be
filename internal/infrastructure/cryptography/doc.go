// Package cryptography implements the AES building blocks of the job manager: the key
// schedule provider, which turns raw keys into direction-specific round keys, and the ECB
// cipher kernels, which transform a batch of independent buffers per invocation.
package cryptography
