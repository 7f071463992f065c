// Command stegctl hides files and text in PGM/PPM images and recovers them.
package main

func main() {
	execute()
}
