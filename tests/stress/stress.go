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

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"net/http"
	_ "net/http/pprof"

	clickhouse "github.com/ClickHouse/ch-native-go"
	"github.com/ClickHouse/ch-native-go/lib/column"
	"github.com/ClickHouse/ch-native-go/lib/proto"
	"github.com/google/uuid"
	_ "github.com/mkevac/debugcharts"
)

// One connection per worker: a Conn is single-goroutine by contract.
type App struct {
	selectConn *clickhouse.Conn
	insertConn *clickhouse.Conn
	signal     chan os.Signal
}

type discardEvents struct{}

func (discardEvents) OnData(*proto.Block)                {}
func (discardEvents) OnProgress(*proto.Progress)         {}
func (discardEvents) OnProfile(*proto.ProfileInfo)       {}
func (discardEvents) OnServerException(*proto.Exception) {}
func (discardEvents) OnFinish()                          {}

func (app *App) selectWorker() {
	for range time.Tick(time.Second) {
		err := app.selectConn.Query(context.Background(),
			"SELECT number, toString(number), toDateTime(number) FROM system.numbers LIMIT 150000",
			discardEvents{},
			clickhouse.WithQueryID(uuid.NewString()),
		)
		if err != nil {
			log.Fatal("Query", err)
		}
	}
}

func (app *App) insertWorker() {
	for range time.Tick(time.Second) {
		block := clickhouse.NewBlock(3, 150_000)
		var (
			ids, _   = column.Type("UInt64").Column()
			names, _ = column.Type("String").Column()
			at, _    = column.Type("DateTime").Column()
		)
		now := time.Now()
		for i := 0; i < 150_000; i++ {
			ids.Append(uint64(i))
			names.Append(uuid.NewString())
			at.Append(now)
		}
		block.AppendColumn("id", ids)
		block.AppendColumn("name", names)
		block.AppendColumn("created_at", at)
		if err := app.insertConn.Insert(context.Background(), "stress", block); err != nil {
			log.Fatal("Insert", err)
		}
	}
}

const ddl = `
CREATE TABLE IF NOT EXISTS stress (
	  id UInt64
	, name String
	, created_at DateTime
) Engine Null
`

// http://127.0.0.1:8080/debug/pprof/
// http://127.0.0.1:8080/debug/charts/
func main() {
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
	opt := &clickhouse.Options{
		Addr: "127.0.0.1:9000",
		Auth: clickhouse.Auth{
			Database: "default",
			Username: "default",
			Password: "",
		},
		RethrowServerExceptions: true,
	}
	selectConn, err := clickhouse.Open(opt)
	if err != nil {
		log.Fatal(err)
	}
	insertConn, err := clickhouse.Open(opt)
	if err != nil {
		log.Fatal(err)
	}
	if err := selectConn.Query(context.Background(), ddl, discardEvents{}); err != nil {
		log.Fatal(err)
	}
	app := App{
		selectConn: selectConn,
		insertConn: insertConn,
		signal:     make(chan os.Signal, 1),
	}
	signal.Notify(app.signal, syscall.SIGINT, syscall.SIGTERM)
	go app.selectWorker()
	go app.insertWorker()
	<-app.signal
}
