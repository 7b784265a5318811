// Package storage keeps the boot settings record in LittleFS.
// It handles atomic writes, version checking, and cleanup of temporary files.
// Only provisioning settings live here; runtime state is never written.
package storage

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/config"

	"tinygo.org/x/tinyfs"
	"tinygo.org/x/tinyfs/littlefs"
)

const (
	configDir  = "/config"
	deviceFile = "/config/device.bin"
	tempSuffix = ".tmp"
)

var (
	ErrNotFound        = errors.New("device config not found")
	ErrInvalidConfig   = errors.New("invalid device config data")
	ErrVersionMismatch = errors.New("config version mismatch")
)

// Manager handles settings persistence using LittleFS.
type Manager struct {
	fs       *littlefs.LFS
	blockDev tinyfs.BlockDevice
	mounted  bool
}

// New initializes the storage system with the given block device.
// It mounts the filesystem and performs boot-time cleanup.
// If format is true and mount fails, it will format the filesystem.
func New(blockDev tinyfs.BlockDevice, format bool) (*Manager, error) {
	lfs := littlefs.New(blockDev)

	// Conservative settings for RP2040 flash
	lfs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 128,
	})

	err := lfs.Mount()
	if err != nil {
		if !format {
			return nil, err
		}
		if err := lfs.Format(); err != nil {
			return nil, err
		}
		if err := lfs.Mount(); err != nil {
			return nil, err
		}
	}

	m := &Manager{
		fs:       lfs,
		blockDev: blockDev,
		mounted:  true,
	}

	if err := m.bootCleanup(); err != nil {
		println("[store] cleanup:", err.Error())
	}

	return m, nil
}

// Close unmounts the filesystem.
func (m *Manager) Close() error {
	if m.mounted {
		m.mounted = false
		return m.fs.Unmount()
	}
	return nil
}

// bootCleanup removes temporary files left over from interrupted writes.
func (m *Manager) bootCleanup() error {
	entries, err := m.readDir(configDir)
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, tempSuffix) {
			m.fs.Remove(path.Join(configDir, name))
		}
	}
	return nil
}

// readDir reads the directory entries at the given path.
func (m *Manager) readDir(dirPath string) ([]os.FileInfo, error) {
	f, err := m.fs.Open(dirPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !f.IsDir() {
		return nil, errors.New("not a directory")
	}

	return f.Readdir(-1)
}

// ensureDirs creates the config directory if it doesn't exist.
func (m *Manager) ensureDirs() error {
	if err := m.fs.Mkdir(configDir, 0755); err != nil && !isExist(err) {
		return err
	}
	return nil
}

// isExist checks if an error is "already exists".
// LittleFS errors don't always match os.IsExist, so we check the message too.
func isExist(err error) bool {
	if err == nil {
		return false
	}
	if os.IsExist(err) {
		return true
	}
	return strings.Contains(err.Error(), "already exists")
}

// isNotExist is the missing-entry counterpart of isExist.
func isNotExist(err error) bool {
	if err == nil {
		return false
	}
	if os.IsNotExist(err) {
		return true
	}
	return strings.Contains(err.Error(), "No directory entry")
}

// LoadDevice loads the device configuration.
// A record written by another settings version yields ErrVersionMismatch.
func (m *Manager) LoadDevice(cfg *config.DeviceConfig) error {
	f, err := m.fs.Open(deviceFile)
	if err != nil {
		if isNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	defer f.Close()

	buf := make([]byte, config.Size)
	n, err := f.Read(buf)
	if err != nil {
		return err
	}
	if n != config.Size {
		return ErrInvalidConfig
	}

	var loaded config.DeviceConfig
	if err := loaded.UnmarshalBinary(buf); err != nil {
		return err
	}
	if loaded.Version != config.CurrentVersion {
		return ErrVersionMismatch
	}

	*cfg = loaded
	return nil
}

// SaveDevice saves the device configuration atomically.
func (m *Manager) SaveDevice(cfg *config.DeviceConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := m.ensureDirs(); err != nil {
		return err
	}

	cfg.Version = config.CurrentVersion

	data, err := cfg.MarshalBinary()
	if err != nil {
		return err
	}

	return m.atomicWrite(deviceFile, data)
}

// LoadOrDefault returns the stored configuration when it is present and
// valid, and config.Default otherwise. The error reports why the defaults
// were chosen; it is nil when the stored record was used.
func LoadOrDefault(m *Manager) (config.DeviceConfig, error) {
	var cfg config.DeviceConfig
	if err := m.LoadDevice(&cfg); err != nil {
		return config.Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return config.Default(), err
	}
	return cfg, nil
}

// atomicWrite writes data to a temporary file, syncs it, then renames.
// The original file is never in a partially written state.
func (m *Manager) atomicWrite(filepath string, data []byte) error {
	tempPath := filepath + tempSuffix

	// Leftover from an interrupted write
	m.fs.Remove(tempPath)

	f, err := m.fs.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		m.fs.Remove(tempPath)
		return err
	}

	// Sync so the data hits flash before the rename
	if syncer, ok := f.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			f.Close()
			m.fs.Remove(tempPath)
			return err
		}
	}

	if err := f.Close(); err != nil {
		m.fs.Remove(tempPath)
		return err
	}

	// LittleFS rename doesn't replace
	m.fs.Remove(filepath)

	if err := m.fs.Rename(tempPath, filepath); err != nil {
		m.fs.Remove(tempPath)
		return err
	}

	return nil
}
