// Command symcalc evaluates, differentiates and simplifies expression trees
// given in the symcalc JSON form.
package main

import "github.com/njchilds90/symcalc/cmd/symcalc/commands"

func main() {
	commands.Execute()
}
