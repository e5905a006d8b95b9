// Binary swap is intentionally left as a stub so nobody submits live
// transactions while the quoting side is still being proven out.
package main

import (
	"fmt"
	"log"
)

func main() {
	// Intentionally minimal to avoid accidental live trading during setup.
	log.Println("swap stub - wire Jupiter swap submission here once quoting is proven out")
	fmt.Print("")
}
