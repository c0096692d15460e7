package robot_test

import (
	"testing"

	"github.com/jcorbin/gointcode"
	"github.com/jcorbin/gointcode/robot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobot_Command(t *testing.T) {
	r := robot.New()
	for _, cmd := range [][2]intcode.Word{
		{1, 0},
		{0, 0},
		{1, 0},
		{1, 0},
		{0, 1},
		{1, 0},
		{1, 0},
	} {
		require.NoError(t, r.Command(cmd[0], cmd[1]))
	}
	assert.Equal(t, robot.Point{X: 0, Y: -1}, r.Loc)
	assert.Equal(t, robot.Left, r.Dir)
	assert.Equal(t, 6, r.Painted())
	assert.Equal(t, ""+
		"..#\n"+
		"..#\n"+
		"##.\n",
		r.String())

	assert.EqualError(t, r.Command(2, 0), "invalid paint color 2")
	assert.EqualError(t, r.Command(0, -1), "invalid turn -1")
}

func TestRobot_Run(t *testing.T) {
	prog := intcode.MustParse("" +
		"3,100,104,1,104,0," +
		"3,100,104,0,104,0," +
		"3,100,104,1,104,0," +
		"3,100,104,1,104,0," +
		"3,100,4,100,104,1," +
		"99")

	r := robot.New()
	require.NoError(t, r.Run(prog))
	assert.Equal(t, 4, r.Painted())
	assert.Equal(t, robot.Point{X: 1, Y: 0}, r.Loc)
	assert.Equal(t, robot.Right, r.Dir)
	assert.Equal(t, robot.Black, r.Camera(), "expected unpainted panel under robot")
	assert.Equal(t, ".#\n##\n", r.String())

	t.Run("white start", func(t *testing.T) {
		r := robot.New()
		r.Paint(robot.White)
		require.NoError(t, r.Run(intcode.MustParse("3,100,4,100,104,1,99")))
		assert.Equal(t, 1, r.Painted())
		assert.Equal(t, "#\n", r.String())
	})

	t.Run("white start unpainted", func(t *testing.T) {
		r := robot.New()
		r.Paint(robot.White)
		require.NoError(t, r.Run(intcode.MustParse("99")))
		assert.Equal(t, 0, r.Painted(), "starting panel is not painted by the robot")
		assert.Equal(t, robot.White, r.Camera())
		assert.Equal(t, "#\n", r.String())
	})

	t.Run("repaint counts once", func(t *testing.T) {
		r := robot.New()
		r.Paint(robot.White)
		require.NoError(t, r.Command(0, 1))
		require.NoError(t, r.Command(1, 1))
		require.NoError(t, r.Command(1, 1))
		require.NoError(t, r.Command(1, 1))
		assert.Equal(t, robot.Point{X: 0, Y: 0}, r.Loc)
		assert.Equal(t, 4, r.Painted())
		require.NoError(t, r.Command(0, 1))
		assert.Equal(t, 4, r.Painted())
		assert.Equal(t, ".#\n##\n", r.String())
	})

	t.Run("halt before turn", func(t *testing.T) {
		err := robot.New().Run(intcode.MustParse("3,0,104,1,99"))
		assert.EqualError(t, err, "after paint 1 @{0 0}: runtime halted before turning")
	})

	t.Run("output before input", func(t *testing.T) {
		err := robot.New().Run(intcode.MustParse("104,1,99"))
		assert.EqualError(t, err, "unexpected output 1 before camera read @{0 0}")
	})
}
