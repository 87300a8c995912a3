// Command formview serves, prompts for and renders the project intake form.
package main

func main() {
	Execute()
}
