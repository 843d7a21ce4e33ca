package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// multiSigWalletABIJSON describes the read and write methods of a wallet
// deployed by the factory.
const multiSigWalletABIJSON = `[
	{"type":"function","name":"owners","stateMutability":"view",
	 "inputs":[{"name":"","type":"uint256"}],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"threshold","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"isOwner","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transactions","stateMutability":"view",
	 "inputs":[{"name":"","type":"uint256"}],
	 "outputs":[
		{"name":"to","type":"address"},
		{"name":"value","type":"uint256"},
		{"name":"data","type":"bytes"},
		{"name":"executed","type":"bool"},
		{"name":"numConfirmations","type":"uint256"}
	 ]},
	{"type":"function","name":"confirmations","stateMutability":"view",
	 "inputs":[{"name":"","type":"uint256"},{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"submitTransaction","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"},{"name":"data","type":"bytes"}],
	 "outputs":[]},
	{"type":"function","name":"confirmTransaction","stateMutability":"nonpayable",
	 "inputs":[{"name":"txIndex","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"executeTransaction","stateMutability":"nonpayable",
	 "inputs":[{"name":"txIndex","type":"uint256"}],
	 "outputs":[]}
]`

// walletFactoryABIJSON describes the wallet factory, including the custom
// errors it reverts with.
const walletFactoryABIJSON = `[
	{"type":"function","name":"MAX_OWNERS","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"MIN_OWNERS","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"createWallet","stateMutability":"nonpayable",
	 "inputs":[{"name":"owners","type":"address[]"},{"name":"threshold","type":"uint256"}],
	 "outputs":[{"name":"walletAddress","type":"address"}]},
	{"type":"function","name":"getWalletsByCreator","stateMutability":"view",
	 "inputs":[{"name":"creator","type":"address"}],
	 "outputs":[{"name":"wallets","type":"address[]"}]},
	{"type":"function","name":"getWalletCountByCreator","stateMutability":"view",
	 "inputs":[{"name":"creator","type":"address"}],
	 "outputs":[{"name":"count","type":"uint256"}]},
	{"type":"function","name":"isWalletFromFactory","stateMutability":"view",
	 "inputs":[{"name":"wallet","type":"address"}],
	 "outputs":[{"name":"isFactory","type":"bool"}]},
	{"type":"function","name":"predictWalletAddress","stateMutability":"view",
	 "inputs":[{"name":"creator","type":"address"},{"name":"owners","type":"address[]"},{"name":"threshold","type":"uint256"}],
	 "outputs":[{"name":"predictedAddress","type":"address"},{"name":"salt","type":"bytes32"}]},
	{"type":"function","name":"totalWalletsCreated","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"error","name":"DuplicateOwner","inputs":[{"name":"owner","type":"address"}]},
	{"type":"error","name":"InvalidOwnersLength","inputs":[{"name":"length","type":"uint256"}]},
	{"type":"error","name":"InvalidPredictionParameters","inputs":[]},
	{"type":"error","name":"InvalidThreshold","inputs":[{"name":"threshold","type":"uint256"},{"name":"ownersLength","type":"uint256"}]},
	{"type":"error","name":"WalletDeploymentFailed","inputs":[]},
	{"type":"error","name":"ZeroAddressOwner","inputs":[]}
]`

var (
	multiSigWalletABI = mustParseABI(multiSigWalletABIJSON)
	walletFactoryABI  = mustParseABI(walletFactoryABIJSON)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}
