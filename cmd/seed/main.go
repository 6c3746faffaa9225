// seed 从 JSON 文件导入类型、导演和电影。电影在 HTTP 接口中只读，只能通过这里写入。
//
//	seed --file fixtures.json --create-schema
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/user/moviecatalog/internal/config"
	"github.com/user/moviecatalog/internal/repository"
)

type args struct {
	File         string
	DatabaseURL  string
	CreateSchema bool
	Timeout      time.Duration
}

func parseArgs(argv []string, defaultURL string) (args, error) {
	var a args
	app := kingpin.New("seed", "导入电影目录初始数据")
	app.Flag("file", "JSON 数据文件").Short('f').Required().ExistingFileVar(&a.File)
	app.Flag("database-url", "数据库连接串，默认读取 DATABASE_URL / DB_* 环境变量").
		Default(defaultURL).StringVar(&a.DatabaseURL)
	app.Flag("create-schema", "导入前建表（已存在则跳过）").BoolVar(&a.CreateSchema)
	app.Flag("timeout", "整体超时").Default("30s").DurationVar(&a.Timeout)

	_, err := app.Parse(argv)
	return a, err
}

func loadFixture(path string) (repository.Fixture, error) {
	var f repository.Fixture
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	err = json.Unmarshal(data, &f)
	return f, err
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}
	cfg := config.Load()

	a, err := parseArgs(os.Args[1:], cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("参数错误: %v", err)
	}

	fixture, err := loadFixture(a.File)
	if err != nil {
		log.Fatalf("读取数据文件失败: %v", err)
	}

	db, err := repository.InitDB(a.DatabaseURL, 2, 1)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	if a.CreateSchema {
		if err := repository.CreateSchema(ctx, db); err != nil {
			log.Fatalf("建表失败: %v", err)
		}
	}

	res, err := repository.Seed(ctx, db, fixture)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}
	log.Printf("导入完成: %d 个类型, %d 个导演, %d 部电影", res.Genres, res.Directors, res.Movies)
}
