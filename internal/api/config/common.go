package config

import "Prism/internal/analytics"

// Config 配置主体
type Config struct {
	Server                  ServerConfig         `mapstructure:"server"`
	DB                      DBConfig             `mapstructure:"database"`
	Redis                   RedisConfig          `mapstructure:"redis"`
	Mongo                   MongoConfig          `mapstructure:"mongo"`
	MinIO                   MinIOConfig          `mapstructure:"minio"`
	Elastic                 ElasticConfig        `mapstructure:"elastic"`
	Logstash                LogstashConfig       `mapstructure:"logstash"`
	Kafka                   KafkaConfig          `mapstructure:"kafka"`
	KafkaEngagementConsumer KafkaConsumerBinding `mapstructure:"kafka_engagement_consumer"`
	KafkaFollowConsumer     KafkaConsumerBinding `mapstructure:"kafka_follow_consumer"`
	KafkaContentConsumer    KafkaConsumerBinding `mapstructure:"kafka_content_consumer"`
	Analytics               AnalyticsConfig      `mapstructure:"analytics"`
	Alert                   AlertConfig          `mapstructure:"alert"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig Mongo配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	ExportBucket string `mapstructure:"export_bucket"`
	UseSSL       bool   `mapstructure:"use_ssl"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address      string `mapstructure:"address"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	ContentIndex string `mapstructure:"content_index"`
}

// LogstashConfig 远程日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaConsumerBinding 单个消费组的 topic 绑定
type KafkaConsumerBinding struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// AnalyticsConfig 评分与榜单配置
type AnalyticsConfig struct {
	MinSample int `mapstructure:"min_sample"`
	// Weights 为空时使用默认权重
	Weights *analytics.Weights `mapstructure:"weights"`
}

// AlertConfig 异常告警 webhook
type AlertConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Timeout    int    `mapstructure:"timeout"`
}
