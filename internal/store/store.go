package store

// ReadStoreFile reads a file addressed by its bare name inside the store
// directory.
func ReadStoreFile(filename string) ([]byte, error) {
	path, err := ConcatToStoreDir(filename)
	if err != nil {
		return nil, err
	}
	return ReadFile(path)
}

// WriteStoreFile writes data to a file addressed by its bare name inside the
// store directory.
func WriteStoreFile(filename string, data []byte) error {
	path, err := ConcatToStoreDir(filename)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// StoreFileExists reports whether a file with the given bare name exists in
// the store directory.
func StoreFileExists(filename string) (bool, error) {
	path, err := ConcatToStoreDir(filename)
	if err != nil {
		return false, err
	}
	return FileExists(path), nil
}

// RemoveStoreFile removes a file addressed by its bare name inside the store
// directory.
func RemoveStoreFile(filename string) error {
	path, err := ConcatToStoreDir(filename)
	if err != nil {
		return err
	}
	return RemoveFile(path)
}
