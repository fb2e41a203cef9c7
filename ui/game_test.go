package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slither/model"
)

func TestCellRectInsideGrid(t *testing.T) {
	x, y, ok := cellRect(model.Coord{X: 0, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, float64(HudHeight), y)

	x, y, ok = cellRect(model.Coord{X: model.GridWidth - 1, Y: model.GridHeight - 1})
	assert.True(t, ok)
	assert.Equal(t, float64((model.GridWidth-1)*CellSize), x)
	assert.Equal(t, float64(HudHeight+(model.GridHeight-1)*CellSize), y)
}

func TestCellRectRejectsOutOfGrid(t *testing.T) {
	for _, c := range []model.Coord{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: model.GridWidth, Y: 0},
		{X: 0, Y: model.GridHeight},
	} {
		_, _, ok := cellRect(c)
		assert.False(t, ok, "%+v", c)
	}
}

func TestEyeOffsetsVertical(t *testing.T) {
	for _, dir := range []model.Direction{model.DIR_UP, model.DIR_DOWN} {
		eyes := eyeOffsets(dir)
		assert.Equal(t, eyes[0].Y, eyes[1].Y, dir)
		assert.True(t, eyes[0].X < eyes[1].X, dir)
	}
	up := eyeOffsets(model.DIR_UP)
	down := eyeOffsets(model.DIR_DOWN)
	assert.True(t, up[0].Y < down[0].Y)
}

func TestEyeOffsetsHorizontal(t *testing.T) {
	for _, dir := range []model.Direction{model.DIR_LEFT, model.DIR_RIGHT} {
		eyes := eyeOffsets(dir)
		assert.Equal(t, eyes[0].X, eyes[1].X, dir)
		assert.True(t, eyes[0].Y < eyes[1].Y, dir)
	}
	left := eyeOffsets(model.DIR_LEFT)
	right := eyeOffsets(model.DIR_RIGHT)
	assert.True(t, left[0].X < right[0].X)
}

func TestEyeOffsetsDefaultFacesRight(t *testing.T) {
	assert.Equal(t, eyeOffsets(model.DIR_RIGHT), eyeOffsets(""))
}

func TestEyeOffsetsStayOnHead(t *testing.T) {
	for _, dir := range []model.Direction{model.DIR_UP, model.DIR_DOWN, model.DIR_LEFT, model.DIR_RIGHT} {
		for _, e := range eyeOffsets(dir) {
			assert.True(t, e.X >= 0 && e.X+e.Size <= CellSize, dir)
			assert.True(t, e.Y >= 0 && e.Y+e.Size <= CellSize, dir)
		}
	}
}
