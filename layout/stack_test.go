// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/shadow/math32"
	"github.com/stretchr/testify/assert"
)

func TestStackArrange(t *testing.T) {
	ctx := &Context{}
	ctx.Defaults()
	st := &Stack{}

	type tc struct {
		box   Box
		items []Item
		avail math32.Vector2
		want  Result
	}
	tcs := map[string]tc{
		"column with gap and padding": {
			box: Box{Padding: NewSides(10), Gap: 5, Direction: Column},
			items: []Item{
				{Min: math32.Vec2(50, 20)},
				{Min: math32.Vec2(30, 40)},
			},
			avail: math32.Vec2(200, 200),
			want: Result{
				Size: math32.Vec2(70, 85),
				Items: []Metrics{
					{Pos: math32.Vec2(10, 10), Size: math32.Vec2(50, 20)},
					{Pos: math32.Vec2(10, 35), Size: math32.Vec2(30, 40)},
				},
			},
		},
		"grow distributes surplus by weight": {
			box: Box{Direction: Row},
			items: []Item{
				{Min: math32.Vec2(20, 10), Grow: math32.Vec2(1, 0)},
				{Min: math32.Vec2(30, 10), Grow: math32.Vec2(3, 0)},
			},
			avail: math32.Vec2(100, 50),
			want: Result{
				Size: math32.Vec2(100, 10),
				Items: []Metrics{
					{Pos: math32.Vec2(0, 0), Size: math32.Vec2(32.5, 10)},
					{Pos: math32.Vec2(32.5, 0), Size: math32.Vec2(67.5, 10)},
				},
			},
		},
		"grow respects max without redistribution": {
			box: Box{Direction: Row},
			items: []Item{
				{Min: math32.Vec2(20, 10), Grow: math32.Vec2(1, 0)},
				{Min: math32.Vec2(30, 10), Max: math32.Vec2(40, 0), Grow: math32.Vec2(3, 0)},
			},
			avail: math32.Vec2(100, 50),
			want: Result{
				Size: math32.Vec2(72.5, 10),
				Items: []Metrics{
					{Pos: math32.Vec2(0, 0), Size: math32.Vec2(32.5, 10)},
					{Pos: math32.Vec2(32.5, 0), Size: math32.Vec2(40, 10)},
				},
			},
		},
		"cross axis stretch": {
			box: Box{Direction: Column},
			items: []Item{
				{Min: math32.Vec2(20, 30), Grow: math32.Vec2(1, 0)},
			},
			avail: math32.Vec2(80, 200),
			want: Result{
				Size: math32.Vec2(80, 30),
				Items: []Metrics{
					{Pos: math32.Vec2(0, 0), Size: math32.Vec2(80, 30)},
				},
			},
		},
		"infinite main axis uses intrinsic sizes": {
			box: Box{Direction: Row},
			items: []Item{
				{Min: math32.Vec2(20, 10), Grow: math32.Vec2(1, 0)},
				{Min: math32.Vec2(30, 10), Grow: math32.Vec2(1, 0)},
			},
			avail: math32.Vec2(math32.Infinity, 50),
			want: Result{
				Size: math32.Vec2(50, 10),
				Items: []Metrics{
					{Pos: math32.Vec2(0, 0), Size: math32.Vec2(20, 10)},
					{Pos: math32.Vec2(20, 0), Size: math32.Vec2(30, 10)},
				},
			},
		},
		"intrinsic clamped by max": {
			box: Box{Direction: Row},
			items: []Item{
				{Min: math32.Vec2(10, 10), Max: math32.Vec2(20, 30), Intrinsic: func(avail math32.Vector2) math32.Vector2 {
					return math32.Vec2(25, 25)
				}},
			},
			avail: math32.Vec2(100, 100),
			want: Result{
				Size: math32.Vec2(20, 25),
				Items: []Metrics{
					{Pos: math32.Vec2(0, 0), Size: math32.Vec2(20, 25)},
				},
			},
		},
		"empty container": {
			box:   Box{Min: math32.Vec2(15, 0), Padding: NewSides(4), Direction: Row},
			items: nil,
			avail: math32.Vec2(100, 100),
			want:  Result{Size: math32.Vec2(15, 8), Items: []Metrics{}},
		},
		"sanitized avail": {
			box: Box{Direction: Row},
			items: []Item{
				{Min: math32.Vec2(20, 10), Grow: math32.Vec2(1, 1)},
			},
			avail: math32.Vec2(math32.NaN(), -50),
			want: Result{
				Size: math32.Vec2(20, 10),
				Items: []Metrics{
					{Pos: math32.Vec2(0, 0), Size: math32.Vec2(20, 10)},
				},
			},
		},
	}
	for nm, c := range tcs {
		t.Run(nm, func(t *testing.T) {
			got := st.Arrange(ctx, c.box, c.items, c.avail)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStackPure(t *testing.T) {
	ctx := &Context{}
	ctx.Defaults()
	st := &Stack{}
	box := Box{Padding: NewSides(2, 4), Gap: 3, Direction: Column}
	items := []Item{
		{Min: math32.Vec2(10, 10), Grow: math32.Vec2(1, 1)},
		{Min: math32.Vec2(40, 8)},
	}
	avail := math32.Vec2(120, 90)
	first := st.Arrange(ctx, box, items, avail)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, st.Arrange(ctx, box, items, avail))
	}
}
