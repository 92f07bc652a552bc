package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/rays3d/internal/publish"
	"github.com/lukaszgryglicki/rays3d/internal/rays3d"
	"github.com/lukaszgryglicki/rays3d/internal/viewer"
)

func main() {
	// .env (if any) is loaded first so the flags below can come from it too.
	pub := publish.LoadConfig(".")

	rays3d.Debug = os.Getenv("DEBUG") != ""
	rays3d.PNG16 = os.Getenv("PNG16") != ""
	rays3d.RAW = os.Getenv("RAW") != ""
	rays3d.GIF = os.Getenv("GIF") != ""
	if w := os.Getenv("WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			fmt.Printf("Error: WORKERS=%q: %v\n", w, err)
			os.Exit(1)
		}
		rays3d.Workers = n
	}
	view := os.Getenv("VIEW") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	res, err := rays3d.Run(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if pub.Enabled() {
		up, err := publish.New(pub)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := up.UploadAll(context.Background(), res.Files); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	if view {
		if err := viewer.Show("rays3d: "+cfg, res.Image.NRGBA()); err != nil {
			log.Printf("viewer: %v", err)
		}
	}
}
