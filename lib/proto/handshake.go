// Licensed to ClickHouse, Inc. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. ClickHouse, Inc. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package proto

import (
	"fmt"
	"time"

	"github.com/ClickHouse/ch-native-go/lib/binary"
)

type ClientHandshake struct {
	Database string
	Username string
	Password string
}

func (h ClientHandshake) Encode(encoder *binary.Encoder) error {
	if err := encoder.String(ClientName); err != nil {
		return err
	}
	if err := encoder.Uvarint(ClientVersionMajor); err != nil {
		return err
	}
	if err := encoder.Uvarint(ClientVersionMinor); err != nil {
		return err
	}
	if err := encoder.Uvarint(ClientRevision); err != nil {
		return err
	}
	if err := encoder.String(h.Database); err != nil {
		return err
	}
	if err := encoder.String(h.Username); err != nil {
		return err
	}
	return encoder.String(h.Password)
}

func (h ClientHandshake) String() string {
	return fmt.Sprintf("%s %d.%d.%d", ClientName, ClientVersionMajor, ClientVersionMinor, ClientRevision)
}

// ServerHandshake is the server's half of the hello dialog. It is captured
// once per connection and read-only afterwards; every revision gate in this
// package compares against Revision.
type ServerHandshake struct {
	Name    string
	Version struct {
		Major uint64
		Minor uint64
	}
	Revision uint64
	Timezone *time.Location
}

func (srv *ServerHandshake) Decode(decoder *binary.Decoder) (err error) {
	if srv.Name, err = decoder.String(); err != nil {
		return fmt.Errorf("could not read server name: %w", err)
	}
	if srv.Version.Major, err = decoder.Uvarint(); err != nil {
		return fmt.Errorf("could not read server major version: %w", err)
	}
	if srv.Version.Minor, err = decoder.Uvarint(); err != nil {
		return fmt.Errorf("could not read server minor version: %w", err)
	}
	if srv.Revision, err = decoder.Uvarint(); err != nil {
		return fmt.Errorf("could not read server revision: %w", err)
	}
	if srv.Revision >= DBMS_MIN_REVISION_WITH_SERVER_TIMEZONE {
		name, err := decoder.String()
		if err != nil {
			return fmt.Errorf("could not read server timezone: %w", err)
		}
		if srv.Timezone, err = time.LoadLocation(name); err != nil {
			return fmt.Errorf("could not load time location: %w", err)
		}
	}
	return nil
}

func (srv ServerHandshake) String() string {
	return fmt.Sprintf("%s server version %d.%d revision %d (timezone %s)",
		srv.Name,
		srv.Version.Major,
		srv.Version.Minor,
		srv.Revision,
		srv.Timezone,
	)
}
