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

// Package network builds the http transport used for artifact downloads.
package network

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
	"golang.org/x/net/http/httpproxy"
)

const (
	maxRetryCount       = 3
	tlsHandshakeTimeout = 20 * time.Second
)

var (
	readFile          = os.ReadFile
	getSystemCertPool = x509.SystemCertPool
	proxyConfig       = httpproxy.FromEnvironment
)

var mutex = sync.Mutex{}

// GetDefaultTransport returns a clone of the default transport that resolves proxies
// from the environment, requires TLS 1.2 and trusts the configured custom certificate.
func GetDefaultTransport(log log.T, appConfig appconfig.SdkArtifactsConfig) *http.Transport {
	result := http.DefaultTransport.(*http.Transport).Clone()
	result.TLSClientConfig = GetDefaultTLSConfig(log, appConfig)
	result.TLSHandshakeTimeout = tlsHandshakeTimeout
	result.Proxy = proxyFromEnvironment()
	return result
}

func proxyFromEnvironment() func(*http.Request) (*url.URL, error) {
	proxyFunc := proxyConfig().ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}
}

// GetDefaultTLSConfig creates and returns a configured TLS config
func GetDefaultTLSConfig(log log.T, appConfig appconfig.SdkArtifactsConfig) *tls.Config {
	mutex.Lock()
	defer mutex.Unlock()

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	certFile := appConfig.Download.CustomCertificateFile
	if certFile == "" {
		return tlsConfig
	}

	var certPool *x509.CertPool
	var err error
	for retryCount := 0; retryCount < maxRetryCount; retryCount++ {
		if certPool, err = getSystemCertPool(); err == nil {
			break
		}
	}
	if err != nil || certPool == nil {
		log.Warnf("Failed to read system certificate pool: %v", err)
		certPool = x509.NewCertPool()
	}

	cert, err := readFile(certFile)
	if err != nil {
		log.Warnf("Not using custom certificate %v: %v", certFile, err)
		return tlsConfig
	}
	if !certPool.AppendCertsFromPEM(cert) {
		log.Warnf("Failed to append custom certificate %v to certificate pool", certFile)
		return tlsConfig
	}

	tlsConfig.RootCAs = certPool
	return tlsConfig
}
