/*
Package registry implements Registry contract which tracks network nodes,
their tiers, merit and boosts.

Every node operation is paid. A node requests an operation by transferring
GAS to the contract with the operation in the data argument of the transfer
(see registryconst Op* constants):

	["register"]           registration, costs RegisterFee
	["upgrade"]            next tier, costs UpgradeFee
	["action", baseMerit]  merit action, costs ActionFee
	["buyBoost", boostID]  next boost level, costs BoostFee

The payment must be exactly the fee of the operation. Received fees are split
between treasury and founder addresses in the same invocation, the contract
keeps no GAS. If any payout fails, the whole invocation fails and no state is
changed. GAS sent without an operation is rejected.

Nodes move through Scout, Operator and Overseer tiers one step per upgrade.
Each of five boosts has up to five levels, every level adds 10% to the merit
credited by actions.

Owner of the contract adjusts merit, fees, payout addresses and ownership
itself.

# Contract notifications

Registered notification. This notification is produced when a new node is
registered.

	Registered:
	  - name: node
	    type: Hash160
	  - name: tier
	    type: Integer
	  - name: fee
	    type: Integer

Upgraded notification. This notification is produced when a node moves to
the next tier.

	Upgraded:
	  - name: node
	    type: Hash160
	  - name: tier
	    type: Integer
	  - name: fee
	    type: Integer

Action notification. This notification is produced on a merit action, it
carries both requested and credited (boosted) merit.

	Action:
	  - name: node
	    type: Hash160
	  - name: baseMerit
	    type: Integer
	  - name: finalMerit
	    type: Integer
	  - name: fee
	    type: Integer

MeritAdjusted notification. This notification is produced on any merit
change and carries the resulting total.

	MeritAdjusted:
	  - name: node
	    type: Hash160
	  - name: total
	    type: Integer

BoostPurchased notification.

	BoostPurchased:
	  - name: node
	    type: Hash160
	  - name: boostID
	    type: Integer
	  - name: level
	    type: Integer
	  - name: fee
	    type: Integer

ParamsUpdated notification. This notification is produced when the owner
sets a new fee schedule.

	ParamsUpdated:
	  - name: registerFee
	    type: Integer
	  - name: upgradeFee
	    type: Integer
	  - name: actionFee
	    type: Integer
	  - name: boostFee
	    type: Integer
	  - name: treasuryBps
	    type: Integer

PayoutAddressesUpdated notification.

	PayoutAddressesUpdated:
	  - name: treasury
	    type: Hash160
	  - name: founder
	    type: Hash160

OwnerChanged notification.

	OwnerChanged:
	  - name: oldOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160

Payout notification. This notification is produced for every non-zero fee
portion forwarded to a payout address.

	Payout:
	  - name: recipient
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package registry

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'o' -> interop.Hash160
    contract owner
  - 't' -> interop.Hash160
    treasury payout address
  - 'f' -> interop.Hash160
    founder payout address
  - 'p' -> std.Serialize(Params)
    fee schedule (here Params is a structure defined in current package)
  - 'n' -> int
    number of registered nodes
  - 'a'<interop.Hash160> -> std.Serialize(Node)
    node records
  - 'b'<interop.Hash160><byte> -> int
    boost levels by node address and boost ID

# Nodes
Node records are never deleted.
*/
