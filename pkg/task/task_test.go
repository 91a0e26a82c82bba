package task

import (
	"testing"

	"digital.vasic.harness/pkg/suite"
	"digital.vasic.harness/pkg/testcase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesSuite(t *testing.T) {
	counter := suite.NewCounter()
	s := suite.New(suite.WithCounter(counter)).MustAdd(
		testcase.NewBasic("input1", "input1"),
		testcase.NewBasic("input2", "expected2"),
	)

	tk := New("Example Task", s)

	assert.Equal(t, "Example Task", tk.Description())
	assert.Empty(t, tk.ID())
	assert.Equal(t, 2, tk.TestCount())
	assert.Equal(t, int64(2), counter.Load())

	for i, c := range tk.Suite().Tests() {
		orig, err := s.At(i)
		require.NoError(t, err)
		assert.True(t, testcase.Equal(orig, c))
		assert.NotSame(t, orig, c)
	}
}

func TestNew_LaterChangesDoNotLeak(t *testing.T) {
	s := suite.New(suite.WithCounter(suite.NewCounter())).MustAdd(
		testcase.NewBasic("a", "a"),
	)
	tk := New("t", s)

	require.NoError(t, s.Add(testcase.NewBasic("b", "b")))
	s.CopyFrom(suite.New(suite.WithCounter(suite.NewCounter())))

	assert.Equal(t, 1, tk.Suite().Count())
	c, err := tk.Suite().At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", c.Input())
}

func TestNewWithID(t *testing.T) {
	s := suite.New(suite.WithCounter(suite.NewCounter()))

	tk := NewWithID("sum", "Sum two numbers", s)

	assert.Equal(t, "sum", tk.ID())
	assert.Equal(t, "Sum two numbers", tk.Description())
	assert.Equal(t, 0, tk.TestCount())
}

func TestNew_NilSuite(t *testing.T) {
	suite.DefaultCounter.Reset()
	defer suite.DefaultCounter.Reset()

	tk := New("empty", nil)

	assert.Equal(t, 0, tk.TestCount())
	_, err := tk.Suite().At(0)
	assert.ErrorIs(t, err, suite.ErrIndexOutOfRange)
	assert.Equal(t, int64(1), suite.TotalCreated())
}

func TestSuite_IsReadOnlyView(t *testing.T) {
	s := suite.New(suite.WithCounter(suite.NewCounter())).MustAdd(
		testcase.NewBasic("a", "a"),
	)
	tk := New("t", s)

	_, isSuite := tk.Suite().(*suite.Suite)
	assert.False(t, isSuite)

	tests := tk.Suite().Tests()
	tests[0] = testcase.NewBasic("z", "y")
	assert.Equal(t, 1, tk.TestCount())
	c, err := tk.Suite().At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", c.Input())

	_, err = tk.Suite().At(1)
	assert.ErrorIs(t, err, suite.ErrIndexOutOfRange)
}
