package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/masterblaster1999/ProcIsoCity-sub005/internal/soft3d"
)

func main() {
	soft3d.Debug = os.Getenv("DEBUG") != ""
	soft3d.Parallel = os.Getenv("SERIAL") == ""
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

	// soft3d [scene.json] [out.{png,ppm,tif}]
	// An empty or "-" scene path renders the built-in demo world.
	scene := ""
	if len(os.Args) > 1 && os.Args[1] != "-" {
		scene = os.Args[1]
	}
	out := "render.png"
	if len(os.Args) > 2 {
		out = os.Args[2]
	}

	if err := soft3d.Run(scene, out); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
