//go:build windows
// +build windows

package main

import (
	"fmt"
	"log"
	"syscall"

	"github.com/dixieflatline76/Quill/config"
	"golang.org/x/sys/windows"
)

var (
	mutex windows.Handle
)

// acquireLock tries to acquire a single-instance lock (mutex on Windows).
// CreateMutex hands back a valid handle even when the mutex already exists,
// so existence is detected by trying to take ownership: a short wait that
// times out means another instance holds it.
func acquireLock() (bool, error) {
	namePtr, err := syscall.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	mutex, err = windows.CreateMutex(nil, false, namePtr)
	if err != nil {
		return false, fmt.Errorf("failed to create mutex: %w", err)
	}

	waitResult, err := windows.WaitForSingleObject(mutex, 100)
	if err != nil {
		windows.CloseHandle(mutex)
		mutex = 0
		return false, fmt.Errorf("failed to wait for mutex: %w", err)
	}
	if waitResult == uint32(windows.WAIT_TIMEOUT) {
		// Mutex is held by another instance
		windows.CloseHandle(mutex)
		mutex = 0
		return false, nil
	}

	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if mutex != 0 { // Important check to avoid panicking if mutex wasn't created
		err := windows.ReleaseMutex(mutex)
		if err != nil {
			log.Printf("Failed to release mutex %v", err)
		}
		err = windows.CloseHandle(mutex)
		if err != nil {
			log.Printf("Failed to close mutex handle: %v", err)
		}
	}
}
