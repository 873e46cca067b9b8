package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BerniceZTT/cdp_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// 集合名
	KVCollection            = "kv_store"
	OperationLogsCollection = "apiOperationLogs"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
)

// InitMongoDB 初始化MongoDB连接
func InitMongoDB(uri, dbName string) error {
	// 设置连接超时
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// 创建客户端
	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("连接MongoDB失败: %w", err)
	}

	// 检查连接
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB失败: %w", err)
	}

	// 选择数据库
	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("已连接到MongoDB")

	return nil
}

// CloseMongoDB 关闭MongoDB连接
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("断开MongoDB连接失败")
			return
		}
		utils.Logger.Info().Msg("已断开MongoDB连接")
	}
}

// GetContext 返回MongoDB操作的上下文
func GetContext() context.Context {
	return ctx
}

// Collection 返回指定名称的集合
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// GetDatabaseStatus 获取数据库状态
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		KVCollection,
		OperationLogsCollection,
	}

	result := make(map[string]interface{})

	for _, collName := range collections {
		coll := db.Collection(collName)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("获取集合计数失败")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		result[collName] = map[string]interface{}{
			"count": count,
		}
	}

	return result, nil
}

// kvDocument 键值存储文档结构
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore 基于MongoDB的键值存储实现
type MongoStore struct {
	coll    *mongo.Collection
	retries int
}

// NewMongoStore 创建MongoDB键值存储（需先调用InitMongoDB）
func NewMongoStore() *MongoStore {
	return &MongoStore{
		coll:    db.Collection(KVCollection),
		retries: 3,
	}
}

// Get 读取键值
func (s *MongoStore) Get(key string) (string, bool, error) {
	result, err := executeDbOperation(func() (interface{}, error) {
		var doc kvDocument
		err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
		if err != nil {
			return nil, err
		}
		return doc.Value, nil
	}, s.retries)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", false, nil
		}
		return "", false, err
	}
	return result.(string), true, nil
}

// Set 写入键值（upsert）
func (s *MongoStore) Set(key, value string) error {
	_, err := executeDbOperation(func() (interface{}, error) {
		update := bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now()}}
		opts := options.Update().SetUpsert(true)
		return s.coll.UpdateOne(ctx, bson.M{"_id": key}, update, opts)
	}, s.retries)
	return err
}

// Remove 删除键
func (s *MongoStore) Remove(key string) error {
	_, err := executeDbOperation(func() (interface{}, error) {
		return s.coll.DeleteOne(ctx, bson.M{"_id": key})
	}, s.retries)
	return err
}

// executeDbOperation 执行数据库操作，提供错误处理和重试机制
func executeDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err

		// 不可重试的错误立即返回
		if !isRetryableError(err) {
			break
		}

		utils.Logger.Error().Err(err).Msgf("数据库操作失败，重试 (%d/%d)", i+1, retries)

		// 延迟后重试
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return nil, lastErr
}

// isRetryableError 判断错误是否可重试
func isRetryableError(err error) bool {
	// MongoDB可重试错误代码
	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
		10058: true, // ConnectionReset
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		return retryableCodes[int(cmdErr.Code)]
	}

	return isNetworkError(err)
}

// isNetworkError 检查是否是网络错误
func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// InsertOperationLog 写入API操作日志
func InsertOperationLog(doc interface{}) error {
	if db == nil {
		return nil
	}
	_, err := db.Collection(OperationLogsCollection).InsertOne(ctx, doc)
	return err
}
