// ABOUTME: Keyframe table for the eight-circle spinner, derived from one base sequence
// ABOUTME: RadiusAt samples the same table so raster and terminal previews match the SVG

package overlay

import (
	"strconv"
	"strings"
	"time"
)

// CircleCount is the number of circles around the spinner ring.
const CircleCount = 8

// CycleDuration is the length of one full animation cycle.
const CycleDuration = 2 * time.Second

// pulse is the radius sequence circle 0 animates through; circle k uses it
// rotated left by k positions.
var pulse = [CircleCount]int{18, 15, 13, 11, 9, 7, 5, 3}

// baseRadii holds the static r attribute of each circle, clockwise from 12 o'clock.
var baseRadii = [CircleCount]int{18, 3, 5, 7, 9, 11, 13, 15}

// ringCenters holds circle centers in the 126x126 viewBox, clockwise from 12 o'clock.
var ringCenters = [CircleCount][2]int{
	{63, 18},
	{95, 31},
	{108, 63},
	{95, 95},
	{63, 108},
	{31, 95},
	{18, 63},
	{31, 31},
}

// keyframes is computed once at init; each row has CircleCount+1 values with
// the first repeated at the end to close the loop.
var keyframes = buildKeyframes()

func buildKeyframes() [CircleCount][CircleCount + 1]int {
	var table [CircleCount][CircleCount + 1]int
	for k := range CircleCount {
		for i := range CircleCount + 1 {
			table[k][i] = pulse[(k+i)%CircleCount]
		}
	}
	return table
}

// circle maps any integer onto a ring position.
func circle(k int) int {
	k %= CircleCount
	if k < 0 {
		k += CircleCount
	}
	return k
}

// Keyframes returns the animated radius values of circle k.
// The result has CircleCount+1 entries and ends with its first value.
func Keyframes(k int) []int {
	row := keyframes[circle(k)]
	return row[:]
}

// BaseRadius returns the static radius of circle k.
func BaseRadius(k int) int {
	return baseRadii[circle(k)]
}

// Center returns the center of circle k in spinner coordinates.
func Center(k int) (cx, cy int) {
	c := ringCenters[circle(k)]
	return c[0], c[1]
}

// keyframeValues formats circle k's keyframes as an SVG values list ("18;15;...;18").
func keyframeValues(k int) string {
	vals := Keyframes(k)
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ";")
}

// RadiusAt returns the radius circle k shows at time t into the animation,
// linearly interpolating between keyframes. t wraps modulo CycleDuration.
func RadiusAt(k int, t time.Duration) float64 {
	t %= CycleDuration
	if t < 0 {
		t += CycleDuration
	}

	vals := keyframes[circle(k)]
	segments := len(vals) - 1
	pos := float64(t) / float64(CycleDuration) * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
	}
	frac := pos - float64(i)

	from, to := float64(vals[i]), float64(vals[i+1])
	return from + (to-from)*frac
}
