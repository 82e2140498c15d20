package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/hugcis/geos"
	"github.com/hugcis/geos/orientation"
)

// Demo of the orientation predicates. Input on stdin should be newline
// separated points in the form "x y", with each ring separated by an extra
// newline. Rings that don't repeat their first point are closed
// automatically. For each ring the tool reports whether its vertices wind
// clockwise or counterclockwise.

var (
	draw  = kingpin.Flag("draw", "Render each ring to the terminal (iTerm2 imgcat protocol).").Bool()
	scale = kingpin.Flag("scale", "Pixels per coordinate unit when drawing.").Default("20").Float64()
)

func main() {
	kingpin.Parse()
	rings := readRings(os.Stdin)
	fmt.Printf("Read %d rings\n", len(rings))
	for _, ring := range rings {
		fmt.Printf("%s: %s\n", ring.DbgName(), verdict(ring))
		if *draw {
			ring.DbgDraw(*scale)
		}
	}
}

func verdict(ring *geos.Ring) string {
	ccw, err := geos.IsCCW(ring)
	switch {
	case err != nil:
		return aurora.Cyan(err.Error()).String()
	case ccw:
		return aurora.Green(geos.CounterClockwise.String()).String()
	default:
		return aurora.Red(geos.Clockwise.String()).String()
	}
}

func readRings(in *os.File) []*orientation.Ring {
	rings := []*orientation.Ring{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []*orientation.Point{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, orientation.NewRing(points...))
				points = []*orientation.Point{}
			}
			continue
		}

		// Parse the point out of the line
		point := parsePoint(line)
		points = append(points, &point)
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, orientation.NewRing(points...))
	}
	return rings
}

func parsePoint(line string) orientation.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return orientation.Point{X: x, Y: y}
}
