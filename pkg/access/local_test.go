//go:build unit

package access

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"

	editfs "github.com/lerenn/edit-path/pkg/fs"
	fsmocks "github.com/lerenn/edit-path/pkg/fs/mocks"
	"github.com/lerenn/edit-path/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDirEntry struct {
	name string
	dir  bool
}

func (e fakeDirEntry) Name() string               { return e.name }
func (e fakeDirEntry) IsDir() bool                { return e.dir }
func (e fakeDirEntry) Type() fs.FileMode          { return 0 }
func (e fakeDirEntry) Info() (fs.FileInfo, error) { return nil, errors.New("not implemented") }

func TestLocal_ReadDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	local := NewLocal(mockFS)

	mockFS.EXPECT().ReadDir("/home/user").Return([]os.DirEntry{
		fakeDirEntry{name: "a.txt"},
		fakeDirEntry{name: "b", dir: true},
	}, nil)

	entries, err := local.ReadDirectory(context.Background(), resource.MustNew(resource.LocalFile, "", "/home/user"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "a.txt"}, {Name: "b", IsDirectory: true}}, entries)
}

func TestLocal_ReadDirectory_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	local := NewLocal(mockFS)
	ctx := context.Background()

	mockFS.EXPECT().ReadDir("/missing").Return(nil, fs.ErrNotExist)
	mockFS.EXPECT().IsNotExist(fs.ErrNotExist).Return(true)
	_, err := local.ReadDirectory(ctx, resource.MustNew(resource.LocalFile, "", "/missing"))
	assert.ErrorIs(t, err, ErrNotFound)

	mockFS.EXPECT().ReadDir("/file.txt").Return(nil, editfs.ErrNotDirectory)
	_, err = local.ReadDirectory(ctx, resource.MustNew(resource.LocalFile, "", "/file.txt"))
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = local.ReadDirectory(ctx, resource.MustNew(resource.RemoteFile, "box", "/srv"))
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestLocal_Stat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	local := NewLocal(mockFS)

	mockFS.EXPECT().Exists("/etc/hosts").Return(true, nil)

	exists, err := local.Stat(context.Background(), resource.MustNew(resource.LocalFile, "", "/etc/hosts"))
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = local.Stat(context.Background(), resource.MustNew(resource.UnsavedBuffer, "", "Untitled-1"))
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestLocal_WriteFile_CreateOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	local := NewLocal(mockFS)
	ctx := context.Background()
	h := resource.MustNew(resource.LocalFile, "", "/tmp/new.txt")

	mockFS.EXPECT().CreateFile("/tmp/new.txt", []byte{}, os.FileMode(0644)).Return(nil)
	require.NoError(t, local.WriteFile(ctx, h, []byte{}, WriteOptions{Create: true}))

	mockFS.EXPECT().CreateFile("/tmp/new.txt", []byte{}, os.FileMode(0644)).Return(editfs.ErrFileExists)
	err := local.WriteFile(ctx, h, []byte{}, WriteOptions{Create: true})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	mockFS.EXPECT().CreateFile("/tmp/new.txt", []byte{}, os.FileMode(0644)).Return(fs.ErrNotExist)
	mockFS.EXPECT().IsNotExist(fs.ErrNotExist).Return(true)
	err = local.WriteFile(ctx, h, []byte{}, WriteOptions{Create: true})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_WriteFile_Overwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	local := NewLocal(mockFS)
	ctx := context.Background()
	h := resource.MustNew(resource.LocalFile, "", "/tmp/data.txt")

	mockFS.EXPECT().Exists("/tmp/data.txt").Return(true, nil)
	mockFS.EXPECT().WriteFileAtomic("/tmp/data.txt", []byte("v2"), os.FileMode(0644)).Return(nil)
	require.NoError(t, local.WriteFile(ctx, h, []byte("v2"), WriteOptions{Overwrite: true}))

	mockFS.EXPECT().Exists("/tmp/data.txt").Return(false, nil)
	err := local.WriteFile(ctx, h, []byte("v2"), WriteOptions{Overwrite: true})
	assert.ErrorIs(t, err, ErrNotFound)

	mockFS.EXPECT().Exists("/tmp/data.txt").Return(true, nil)
	err = local.WriteFile(ctx, h, []byte("v2"), WriteOptions{})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
