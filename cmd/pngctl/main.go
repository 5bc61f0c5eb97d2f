// Command pngctl inspects and edits the chunk stream of PNG files.
package main

func main() {
	execute()
}
