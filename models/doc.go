/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePartyRequest: title, party_time, movie_options
  - VoteRequest: movie
  - DistributeRewardsRequest: amount_per_voter

# Domain Types

The ledger's persisted records:

  - Party: a watch-party round with its movie slate and lifecycle flags
  - Vote: one voter's current choice for a party (last vote wins)
  - RewardPayout: the exactly-once payment record per (party, voter)
  - Receipt: a commemorative token with a monotonic token id

All timestamps are epoch seconds, matching the party_time contract.
*/
package models
