package tasklist

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tasklist/app/codec"
	"github.com/umputun/tasklist/app/store"
	"github.com/umputun/tasklist/app/tasklist/mocks"
)

func prepService(t *testing.T) (svc *Service, fname string) {
	t.Helper()
	fname = filepath.Join(t.TempDir(), "tasks.json")
	svc, err := New(fname)
	require.NoError(t, err)
	return svc, fname
}

func readTasks(t *testing.T, svc *Service) []codec.Task {
	t.Helper()
	tasks, err := svc.Tasks()
	require.NoError(t, err)
	return tasks
}

func TestService_FreshFile(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc, fname := prepService(t)
		seq, err := svc.List()
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(seq))
		_, err = os.Stat(fname)
		assert.NoError(t, err, "file created by list")
	})

	t.Run("add", func(t *testing.T) {
		svc, fname := prepService(t)
		task, err := svc.Add("buy milk")
		require.NoError(t, err)
		assert.Equal(t, codec.Task{ID: 1, Description: "buy milk"}, task)
		data, err := os.ReadFile(fname) //nolint:gosec // test file
		require.NoError(t, err)
		assert.Equal(t, "[\n  {\n    \"id\": 1,\n    \"description\": \"buy milk\",\n    \"completed\": false\n  }\n]\n", string(data))
	})

	t.Run("blank file", func(t *testing.T) {
		svc, fname := prepService(t)
		require.NoError(t, os.WriteFile(fname, []byte("\n  \n"), 0o600))
		assert.Empty(t, readTasks(t, svc))
	})
}

func TestService_Add(t *testing.T) {
	svc, _ := prepService(t)
	for _, d := range []string{"one", "two", "three"} {
		_, err := svc.Add(d)
		require.NoError(t, err)
	}
	_, err := svc.Toggle(2)
	require.NoError(t, err)
	before := readTasks(t, svc)

	task, err := svc.Add("four")
	require.NoError(t, err)
	assert.Equal(t, codec.Task{ID: 4, Description: "four"}, task)

	after := readTasks(t, svc)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)], "prior tasks unchanged")
	assert.Equal(t, task, after[len(after)-1])
}

func TestService_List(t *testing.T) {
	svc, fname := prepService(t)
	_, err := svc.Add("buy milk")
	require.NoError(t, err)
	_, err = svc.Add("walk dog")
	require.NoError(t, err)
	_, err = svc.Toggle(1)
	require.NoError(t, err)

	st, err := os.Stat(fname)
	require.NoError(t, err)

	seq, err := svc.List()
	require.NoError(t, err)
	exp := []Entry{{ID: 1, Description: "buy milk", Status: StatusCompleted}, {ID: 2, Description: "walk dog", Status: StatusIncomplete}}
	assert.Equal(t, exp, slices.Collect(seq))
	assert.Equal(t, exp, slices.Collect(seq), "sequence is restartable")

	for e := range seq {
		assert.Equal(t, 1, e.ID)
		break
	}

	st2, err := os.Stat(fname)
	require.NoError(t, err)
	assert.Equal(t, st.ModTime(), st2.ModTime(), "list doesn't write")
}

func TestService_Toggle(t *testing.T) {
	svc, _ := prepService(t)
	_, err := svc.Add("one")
	require.NoError(t, err)
	_, err = svc.Add("two")
	require.NoError(t, err)

	task, err := svc.Toggle(2)
	require.NoError(t, err)
	assert.Equal(t, codec.Task{ID: 2, Description: "two", Completed: true}, task)
	assert.Equal(t, []codec.Task{{ID: 1, Description: "one"}, {ID: 2, Description: "two", Completed: true}}, readTasks(t, svc))

	task, err = svc.Toggle(2)
	require.NoError(t, err)
	assert.Equal(t, codec.Task{ID: 2, Description: "two"}, task)
	assert.Equal(t, []codec.Task{{ID: 1, Description: "one"}, {ID: 2, Description: "two"}}, readTasks(t, svc))
}

func TestService_Remove(t *testing.T) {
	svc, _ := prepService(t)
	for _, d := range []string{"one", "two", "three", "four"} {
		_, err := svc.Add(d)
		require.NoError(t, err)
	}
	_, err := svc.Toggle(3)
	require.NoError(t, err)

	removed, err := svc.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, codec.Task{ID: 2, Description: "two"}, removed)
	assert.Equal(t, []codec.Task{
		{ID: 1, Description: "one"},
		{ID: 2, Description: "three", Completed: true},
		{ID: 3, Description: "four"},
	}, readTasks(t, svc))

	_, err = svc.Remove(3)
	require.NoError(t, err)
	_, err = svc.Remove(1)
	require.NoError(t, err)
	_, err = svc.Remove(1)
	require.NoError(t, err)
	assert.Empty(t, readTasks(t, svc))
}

func TestService_NotFound(t *testing.T) {
	svc, fname := prepService(t)
	_, err := svc.Add("one")
	require.NoError(t, err)
	_, err = svc.Add("two")
	require.NoError(t, err)
	orig, err := os.ReadFile(fname) //nolint:gosec // test file
	require.NoError(t, err)

	for _, id := range []int{0, -1, 3, 100} {
		_, err = svc.Toggle(id)
		require.Error(t, err)
		assert.True(t, IsNotFound(err), "toggle %d", id)
		assert.EqualError(t, err, (&NotFoundError{ID: id}).Error())

		_, err = svc.Remove(id)
		require.Error(t, err)
		assert.True(t, IsNotFound(err), "remove %d", id)

		data, err := os.ReadFile(fname) //nolint:gosec // test file
		require.NoError(t, err)
		assert.Equal(t, orig, data, "file unchanged for id %d", id)
	}
}

func TestService_CorruptFile(t *testing.T) {
	for _, content := range []string{"not json", `{"id": "x"}`} {
		t.Run(content, func(t *testing.T) {
			svc, fname := prepService(t)
			require.NoError(t, os.WriteFile(fname, []byte(content), 0o600))

			_, err := svc.List()
			require.Error(t, err)
			var fe *codec.FormatError
			assert.True(t, errors.As(err, &fe))

			_, err = svc.Add("x")
			assert.True(t, errors.As(err, &fe))
			_, err = svc.Toggle(1)
			assert.True(t, errors.As(err, &fe))
			_, err = svc.Remove(1)
			assert.True(t, errors.As(err, &fe))

			data, err := os.ReadFile(fname) //nolint:gosec // test file
			require.NoError(t, err)
			assert.Equal(t, content, string(data))
		})
	}
}

func TestService_Scenario(t *testing.T) {
	svc, _ := prepService(t)

	_, err := svc.Add("buy milk")
	require.NoError(t, err)
	assert.Equal(t, []codec.Task{{ID: 1, Description: "buy milk"}}, readTasks(t, svc))

	_, err = svc.Toggle(1)
	require.NoError(t, err)
	assert.Equal(t, []codec.Task{{ID: 1, Description: "buy milk", Completed: true}}, readTasks(t, svc))

	_, err = svc.Add("walk dog")
	require.NoError(t, err)
	assert.Equal(t, []codec.Task{{ID: 1, Description: "buy milk", Completed: true}, {ID: 2, Description: "walk dog"}},
		readTasks(t, svc))

	_, err = svc.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, []codec.Task{{ID: 1, Description: "walk dog"}}, readTasks(t, svc))
}

func TestService_Failures(t *testing.T) {
	twoTasks := []byte(`[{"id":1,"description":"one","completed":false},{"id":2,"description":"two","completed":false}]`)

	prep := func(readErr, decodeErr, encodeErr, writeErr error) (*Service, *mocks.StoreMock, *mocks.CodecMock) {
		st := &mocks.StoreMock{
			ReadFunc: func() (store.ReadResult, error) {
				if readErr != nil {
					return store.ReadResult{}, readErr
				}
				return store.ReadResult{Content: twoTasks}, nil
			},
			WriteFunc:  func([]byte) error { return writeErr },
			StringFunc: func() string { return "mock.json" },
		}
		cd := &mocks.CodecMock{
			DecodeFunc: func([]byte) ([]codec.Task, error) {
				if decodeErr != nil {
					return nil, decodeErr
				}
				return []codec.Task{{ID: 1, Description: "one"}, {ID: 2, Description: "two"}}, nil
			},
			EncodeFunc: func([]codec.Task) ([]byte, error) {
				if encodeErr != nil {
					return nil, encodeErr
				}
				return []byte("[]"), nil
			},
		}
		return &Service{Store: st, Codec: cd}, st, cd
	}

	t.Run("read failed", func(t *testing.T) {
		ioErr := &store.IoError{Op: "read", Path: "mock.json", Err: os.ErrPermission}
		svc, st, cd := prep(ioErr, nil, nil, nil)
		_, err := svc.Add("x")
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrPermission))
		_, err = svc.List()
		require.Error(t, err)
		_, err = svc.Toggle(1)
		require.Error(t, err)
		_, err = svc.Remove(1)
		require.Error(t, err)
		assert.Empty(t, cd.DecodeCalls())
		assert.Empty(t, st.WriteCalls())
	})

	t.Run("decode failed", func(t *testing.T) {
		svc, st, _ := prep(nil, &codec.FormatError{Msg: "bad"}, nil, nil)
		_, err := svc.Add("x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't load tasks from mock.json")
		assert.Empty(t, st.WriteCalls())
	})

	t.Run("encode failed", func(t *testing.T) {
		svc, st, _ := prep(nil, nil, errors.New("boom"), nil)
		_, err := svc.Toggle(1)
		require.EqualError(t, err, "can't encode tasks: boom")
		assert.Empty(t, st.WriteCalls())
	})

	t.Run("write failed", func(t *testing.T) {
		svc, st, cd := prep(nil, nil, nil, &store.IoError{Op: "write", Path: "mock.json", Err: errors.New("disk full")})
		_, err := svc.Remove(2)
		require.Error(t, err)
		var ioErr *store.IoError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "write", ioErr.Op)
		assert.Len(t, st.WriteCalls(), 1)
		require.Len(t, cd.EncodeCalls(), 1)
		assert.Equal(t, []codec.Task{{ID: 1, Description: "one"}}, cd.EncodeCalls()[0].Tasks)
	})

	t.Run("not found skips encode and write", func(t *testing.T) {
		svc, st, cd := prep(nil, nil, nil, nil)
		_, err := svc.Remove(5)
		assert.True(t, IsNotFound(err))
		_, err = svc.Toggle(5)
		assert.True(t, IsNotFound(err))
		assert.Empty(t, cd.EncodeCalls())
		assert.Empty(t, st.WriteCalls())
	})

	t.Run("empty content skips decode", func(t *testing.T) {
		svc, st, cd := prep(nil, nil, nil, nil)
		st.ReadFunc = func() (store.ReadResult, error) { return store.ReadResult{Created: true}, nil }
		task, err := svc.Add("first")
		require.NoError(t, err)
		assert.Equal(t, 1, task.ID)
		assert.Empty(t, cd.DecodeCalls())
		assert.Len(t, st.WriteCalls(), 1)
	})
}
