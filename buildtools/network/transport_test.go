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

package network

import (
	"crypto/tls"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-tools-sdk-artifacts/buildtools/appconfig"
	"github.com/aws/aws-tools-sdk-artifacts/buildtools/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/net/http/httpproxy"
)

func TestTransportRequiresTLS12(t *testing.T) {
	transport := GetDefaultTransport(log.NewMockLog(), appconfig.DefaultConfig())

	assert.Equal(t, uint16(tls.VersionTLS12), transport.TLSClientConfig.MinVersion)
	assert.Nil(t, transport.TLSClientConfig.RootCAs)
	assert.Equal(t, tlsHandshakeTimeout, transport.TLSHandshakeTimeout)
}

func TestTransportUsesProxyFromEnvironment(t *testing.T) {
	defer func() { proxyConfig = httpproxy.FromEnvironment }()
	proxyConfig = func() *httpproxy.Config {
		return &httpproxy.Config{HTTPSProxy: "http://proxy.internal:3128", NoProxy: "mirror.internal"}
	}

	transport := GetDefaultTransport(log.NewMockLog(), appconfig.DefaultConfig())

	req, _ := http.NewRequest("GET", "https://sdk-for-net.amazonwebservices.com/releases/aws-sdk-net45-3.7.100.0.zip", nil)
	proxyURL, err := transport.Proxy(req)
	assert.Nil(t, err)
	assert.Equal(t, "proxy.internal:3128", proxyURL.Host)

	req, _ = http.NewRequest("GET", "https://mirror.internal/aws-sdk-net45-3.7.100.0.zip", nil)
	proxyURL, err = transport.Proxy(req)
	assert.Nil(t, err)
	assert.Nil(t, proxyURL)
}

func TestTransportTrustsCustomCertificate(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	certFile := filepath.Join(t.TempDir(), "mirror.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: server.Certificate().Raw})
	assert.Nil(t, os.WriteFile(certFile, certPEM, 0600))

	config := appconfig.DefaultConfig()
	client := http.Client{Transport: GetDefaultTransport(log.NewMockLog(), config)}
	_, err := client.Get(server.URL)
	assert.NotNil(t, err, "self signed mirror must not be trusted by default")

	config.Download.CustomCertificateFile = certFile
	client = http.Client{Transport: GetDefaultTransport(log.NewMockLog(), config)}
	resp, err := client.Get(server.URL)
	assert.Nil(t, err)
	if resp != nil {
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestTLSConfigIgnoresUnreadableCertificate(t *testing.T) {
	logger := log.NewMockLog()
	config := appconfig.DefaultConfig()
	config.Download.CustomCertificateFile = filepath.Join(t.TempDir(), "missing.pem")

	tlsConfig := GetDefaultTLSConfig(logger, config)

	assert.Nil(t, tlsConfig.RootCAs)
	logger.AssertCalled(t, "Warnf", "Not using custom certificate %v: %v", mock.Anything)
}

func TestTLSConfigIgnoresInvalidPEM(t *testing.T) {
	certFile := filepath.Join(t.TempDir(), "garbage.pem")
	assert.Nil(t, os.WriteFile(certFile, []byte("not a certificate"), 0600))
	config := appconfig.DefaultConfig()
	config.Download.CustomCertificateFile = certFile

	tlsConfig := GetDefaultTLSConfig(log.NewMockLog(), config)

	assert.Nil(t, tlsConfig.RootCAs)
}
