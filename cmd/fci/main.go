// SPDX-License-Identifier: MIT

// Command fci runs exact diagonalization of Hubbard and Anderson lattice models
// described by a YAML run file.
//
//	fci solve -c run.yaml --states 5
//	fci basis -c run.yaml
//	fci hamiltonian -c run.yaml
//	fci sweep -c run.yaml --param u --from 0 --to 8 --steps 17 --plot e0.png
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
