package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrQuit is returned when the user explicitly exits the picker with 0.
var ErrQuit = errors.New("selection aborted")

// ChooseImage prints a numbered menu of files to w and reads choices from r
// until a valid number arrives. Entering 0 aborts with ErrQuit.
func ChooseImage(r io.Reader, w io.Writer, files []string) (string, error) {
	if len(files) == 0 {
		return "", errors.New("no image files to choose from")
	}

	fmt.Fprintln(w, "\nAvailable images:")
	for i, f := range files {
		fmt.Fprintf(w, "%d. %s\n", i+1, f)
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "\nChoose an image number (or 0 to exit): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", ErrQuit
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(w, "Please enter a valid number.")
			continue
		}
		if choice == 0 {
			return "", ErrQuit
		}
		if choice >= 1 && choice <= len(files) {
			return files[choice-1], nil
		}
		fmt.Fprintln(w, "Invalid choice. Please try again.")
	}
}
