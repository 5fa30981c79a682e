// Package aes 实现AES分组密码（FIPS-197），三种密钥长度
// 位切片引擎，状态按位而非按表查找，运算不依赖密钥或数据
// 只支持单分组：无工作模式，无填充，无AEAD
package aes

const (
	// KeySize128、KeySize192、KeySize256 是AES的三种密钥长度（字节）
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32

	// BlockSize 是AES分组长度（字节）
	BlockSize = 16
)
