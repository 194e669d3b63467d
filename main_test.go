package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&logs)
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQueueCmd(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "queue", "ana", "bo", "cy")
	is.NoErr(err)
	is.True(strings.Contains(out, "queue: [ana bo cy]"))
	is.True(strings.Contains(out, "served: ana"))
	is.True(strings.Contains(out, "withdrew: bo"))
	is.True(strings.Contains(out, "queue after withdrawal: [cy]"))
	is.True(strings.Contains(out, "cy waits 10.0 minutes"))
}

func TestCircularCmd(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "circular")
	is.NoErr(err)
	is.True(strings.Contains(out, "circular length: 3"))
	is.True(strings.Contains(out, "consumed: [3 4]"))
	is.True(strings.Contains(out, "after swap: [5 6] [1 2]"))
	is.True(strings.Contains(out, "after sort: [1 2] [5 6]"))

	_, err = run(t, "circular", "--capacity", "2")
	is.True(err != nil)
}

func TestDoublyCmd(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "doubly")
	is.NoErr(err)
	is.True(strings.Contains(out, "doubly: 10 20 30 40"))
	is.True(strings.Contains(out, "highest priority: 10"))
	is.True(strings.Contains(out, "length: 3"))
	is.True(strings.Contains(out, "last: 40"))
	is.True(strings.Contains(out, "position 0: 5"))
	is.True(strings.Contains(out, "position 1: 30"))
	is.True(strings.Contains(out, "position 2: 50"))

	_, err = run(t, "doubly", "one")
	is.True(err != nil)
}

func TestSinglyCmd(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "singly")
	is.NoErr(err)
	is.True(strings.Contains(out, "singly: 30 20 10 (length 3)"))
	is.True(strings.Contains(out, "removed: 30"))
	is.True(strings.Contains(out, "position 1: 10"))
	is.True(strings.Contains(out, "consumed position 0: 20"))
}

func TestJSONOutput(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "--json", "singly", "1", "2")
	is.NoErr(err)
	var res struct {
		Demo  string `json:"demo"`
		State []int  `json:"state"`
	}
	is.NoErr(json.Unmarshal([]byte(out), &res))
	is.Equal(res.Demo, "singly")
	is.Equal(len(res.State), 0)

	out, err = run(t, "--json", "doubly", "3", "1", "2")
	is.NoErr(err)
	is.NoErr(json.Unmarshal([]byte(out), &res))
	is.Equal(res.Demo, "doubly")
	is.Equal(res.State, []int{5, 50})
}

func TestAll(t *testing.T) {
	is := is.New(t)
	out, err := run(t)
	is.NoErr(err)
	for _, s := range []string{"queue:", "circular length", "doubly:", "singly:"} {
		is.True(strings.Contains(out, s))
	}
	_, err = run(t, "--average", "0", "all")
	is.True(err != nil)
}

func TestConfigValidate(t *testing.T) {
	is := is.New(t)
	c := defaultConfig()
	is.NoErr(c.Validate())
	c.AverageServiceMinutes = 0
	is.True(c.Validate() != nil)
	c = defaultConfig()
	c.RingCapacity = -1
	is.True(c.Validate() != nil)
}
