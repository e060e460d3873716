// Copyright 2024 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package sdkartifact

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/sdkerr"
	"github.com/cenkalti/backoff/v4"
	"github.com/nightlyone/lockfile"
)

const (
	lockRetryInterval    = 250 * time.Millisecond
	lockMaxRetryInterval = 5 * time.Second
)

// lockPlatform takes the pid lockfile <assembliesRoot>/.<platform>.lock so that two build
// processes do not unpack into the same platform directory at once. The returned
// function releases it.
func (r *Resolver) lockPlatform(assembliesRoot string, platformName string) (unlock func(), err error) {
	const op = "EnsureAvailable"
	download := r.context.AppConfig().Download
	if !download.UseProcessLock {
		return func() {}, nil
	}
	log := r.context.Log()

	lockPath, err := filepath.Abs(filepath.Join(assembliesRoot, "."+platformName+".lock"))
	if err != nil {
		return nil, sdkerr.New(sdkerr.LocalIOFailure, op, assembliesRoot, err)
	}

	// a pid lockfile does not exclude goroutines of the owning process
	value, _ := r.platformLocks.LoadOrStore(lockPath, &sync.Mutex{})
	inProcess := value.(*sync.Mutex)
	inProcess.Lock()

	lock, err := newLockfile(lockPath)
	if err != nil {
		inProcess.Unlock()
		return nil, sdkerr.New(sdkerr.LocalIOFailure, op, lockPath, err)
	}

	err = backoff.RetryNotify(func() error {
		err := lock.TryLock()
		if err == nil || errors.Is(err, lockfile.ErrBusy) {
			return err
		}
		return backoff.Permanent(err)
	}, lockWaitPolicy(download.LockWaitSeconds), func(err error, wait time.Duration) {
		log.Infof("%v is locked by another process, retrying in %v", lockPath, wait)
	})

	if err != nil {
		if errors.Is(err, lockfile.ErrBusy) {
			inProcess.Unlock()
			return nil, sdkerr.Newf(sdkerr.LocalIOFailure, op, lockPath, "timed out after %ds waiting for lock: %v", download.LockWaitSeconds, err)
		}
		log.Warnf("Proceeding without lock %v: %v", lockPath, err)
		return inProcess.Unlock, nil
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			log.Warnf("failed to release lock %v: %v", lockPath, err)
		}
		inProcess.Unlock()
	}, nil
}

func lockWaitPolicy(waitSeconds int) backoff.BackOff {
	if waitSeconds <= 0 {
		return &backoff.StopBackOff{}
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = lockRetryInterval
	policy.MaxInterval = lockMaxRetryInterval
	policy.MaxElapsedTime = time.Duration(waitSeconds) * time.Second
	policy.Reset()
	return policy
}
