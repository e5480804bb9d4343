package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/visionlab/gemini-annotator/internal/utils"
	"github.com/visionlab/gemini-annotator/pkg/processing"
)

// Sample images from the Gemini spatial understanding examples.
var images = []struct {
	url      string
	filename string
}{
	{"https://storage.googleapis.com/generativeai-downloads/images/socks.jpg", "Socks.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/vegetables.jpg", "Vegetables.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/Japanese_Bento.png", "Japanese_bento.png"},
	{"https://storage.googleapis.com/generativeai-downloads/images/Cupcakes.jpg", "Cupcakes.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/origamis.jpg", "Origamis.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/fruits.jpg", "Fruits.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/cat.jpg", "Cat.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/pumpkins.jpg", "Pumpkins.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/breakfast.jpg", "Breakfast.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/bookshelf.jpg", "Bookshelf.jpg"},
	{"https://storage.googleapis.com/generativeai-downloads/images/spill.jpg", "Spill.jpg"},
}

func main() {
	if err := utils.EnsureDir("images"); err != nil {
		log.Fatalf("Error: %v", err)
	}

	processor := processing.NewProcessor()

	fmt.Println("Downloading example images...")
	for _, img := range images {
		path := filepath.Join("images", img.filename)
		if err := processor.DownloadToFile(img.url, path); err != nil {
			log.Printf("Error downloading %s: %v", img.filename, err)
			continue
		}
		fmt.Printf("Downloaded: %s\n", path)
	}

	fmt.Println("\nDownload complete! Images are saved in the 'images' directory.")
}
